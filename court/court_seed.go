package court

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Courts []Court `yaml:"courts"`
}

// LoadSeedFile reads the administrative court seed, e.g.
//
//	courts:
//	  - name: Court A
//	    type: Rubber
//	    hourlyRate: 50
func LoadSeedFile(path string) ([]Court, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("error reading seed file: %w", err)
	}

	var seed seedFile

	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("error parsing seed file: %w", err)
	}

	for _, court := range seed.Courts {
		if err := validate(court); err != nil {
			return nil, fmt.Errorf("invalid court %q in seed file: %w", court.Name, err)
		}
	}

	return seed.Courts, nil
}
