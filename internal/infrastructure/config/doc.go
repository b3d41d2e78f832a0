// Package config handles loading and validating SmartHouse configuration.
//
// This package manages:
//   - Loading configuration from YAML files
//   - Overriding with SMARTHOUSE_* environment variables
//   - Validation of required fields
//   - Default value handling
//
// The house section may also list rooms and devices to create at startup:
//
//	house:
//	  name: "My house"
//	  rooms:
//	    - name: Kitchen
//	      devices:
//	        - {name: Socket1, type: socket, voltage: 227}
//
// Usage:
//
//	cfg, err := config.Load("configs/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.House.Name)
package config
