package provisioner

import (
	"errors"
	"fmt"

	multierror "github.com/hashicorp/go-multierror"
)

var requiredTools = []string{"useradd", "ssh-keygen"}

// CheckPrerequisites verifies administrative privilege and the presence
// of the external utilities before any operation mutates the system.
// All failures are reported together.
func (p *Provisioner) CheckPrerequisites() error {
	var result *multierror.Error

	if p.Geteuid() != 0 {
		result = multierror.Append(result, errors.New("must run with root privileges"))
	}

	for _, tool := range requiredTools {
		if _, err := p.Commands.LookPath(tool); err != nil {
			result = multierror.Append(result, fmt.Errorf("required tool %q not found on PATH", tool))
		}
	}

	return result.ErrorOrNil()
}
