package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/devuserops/devuser/devuser/provisioner"
	"github.com/devuserops/devuser/logger"
)

var (
	log          = logrus.New()
	programLevel = new(slog.LevelVar)
)

type flags struct {
	Create      string
	Remove      string
	List        bool
	Parent      string
	Shell       string
	Groups      string
	Force       bool
	Debug       bool
	ConfigPath  string
	LogFileName string
}

func parseFlags() *flags {
	f := &flags{}
	flag.StringVar(&f.Create, "create", "", "Create a development user with the given name")
	flag.StringVar(&f.Remove, "remove", "", "Remove a development user and its home directory")
	flag.BoolVar(&f.List, "list", false, "List development accounts at or above the UID floor")
	flag.StringVar(&f.Parent, "parent", "", "Parent user whose SSH key and dotfiles seed the new account")
	flag.StringVar(&f.Shell, "shell", "", "Login shell for the new user")
	flag.StringVar(&f.Shell, "s", "", "Login shell for the new user (shorthand)")
	flag.StringVar(&f.Groups, "groups", "", "Comma-separated supplementary groups for the new user")
	flag.StringVar(&f.Groups, "g", "", "Comma-separated supplementary groups for the new user (shorthand)")
	flag.BoolVar(&f.Force, "force", false, "Skip the removal confirmation prompt")
	flag.BoolVar(&f.Force, "f", false, "Skip the removal confirmation prompt (shorthand)")
	flag.BoolVar(&f.Debug, "debug", false, "Enable debug log level")
	flag.StringVar(&f.ConfigPath, "config", "", "Path to an INI file overriding the built-in defaults")
	flag.StringVar(&f.LogFileName, "log", "", "Log file name (default stderr)")

	flag.Parse()

	return f
}

func configureLogger(f *flags) {
	if f.LogFileName != "" {
		file, err := os.OpenFile(f.LogFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			logrus.Fatal(err)
		}
		log.SetOutput(file)
	}

	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: programLevel})
	slog.SetDefault(slog.New(h))

	if f.Debug {
		log.SetLevel(logrus.DebugLevel)
		programLevel.Set(slog.LevelDebug)
	} else {
		log.SetLevel(logrus.InfoLevel)
		programLevel.Set(slog.LevelInfo)
	}
}

func splitGroups(csv string) []string {
	var groups []string
	for _, group := range strings.Split(csv, ",") {
		group = strings.TrimSpace(group)
		if group != "" {
			groups = append(groups, group)
		}
	}
	return groups
}

func loadConfig(f *flags) provisioner.Config {
	if f.ConfigPath == "" {
		return provisioner.DefaultConfig()
	}
	cfg, err := provisioner.LoadConfig(f.ConfigPath)
	if err != nil {
		log.Fatalf("Failed to load config %s: %v", f.ConfigPath, err)
	}
	return cfg
}

func main() {
	f := parseFlags()
	configureLogger(f)

	prov := provisioner.New(loadConfig(f))
	// Step-by-step progress belongs on stdout; diagnostics stay on stderr.
	prov.Log = logger.NewWithWriter(os.Stdout, programLevel.Level())

	ctx := context.Background()

	switch {
	case f.Create != "" && f.Remove != "":
		log.Fatal("--create and --remove are mutually exclusive")

	case f.Create != "":
		if f.Parent == "" {
			log.Fatal("--create requires --parent")
		}
		if err := prov.CheckPrerequisites(); err != nil {
			log.Fatalf("Prerequisite check failed: %v", err)
		}
		spec := provisioner.UserSpec{
			Username: f.Create,
			Parent:   f.Parent,
			Shell:    f.Shell,
			Groups:   splitGroups(f.Groups),
		}
		if err := prov.CreateUser(ctx, spec); err != nil {
			log.Fatalf("Failed to create user %s: %v", f.Create, err)
		}
		fmt.Printf("User %s created\n", f.Create)

	case f.Remove != "":
		if err := prov.CheckPrerequisites(); err != nil {
			log.Fatalf("Prerequisite check failed: %v", err)
		}
		if err := prov.RemoveUser(ctx, f.Remove, f.Force); err != nil {
			log.Fatalf("Failed to remove user %s: %v", f.Remove, err)
		}
		fmt.Printf("User %s removed\n", f.Remove)

	case f.List:
		users, err := prov.ListDevUsers()
		if err != nil {
			log.Fatalf("Failed to list users: %v", err)
		}
		fmt.Println("Development accounts:")
		for _, user := range users {
			fmt.Printf("%s (uid %d, %s)\n", user.Username, user.UID, user.HomeDir)
		}

	default:
		flag.Usage()
		os.Exit(1)
	}
}
