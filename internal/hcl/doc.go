// Package hcl provides the HCL implementation of config.Loader. A task file
// declares one `registry` block per generation task:
//
//	registry "particles" {
//	  input      = "data/particles.json"
//	  output_dir = "${config_dir}/gen"
//	  type_name  = "Particle"
//	}
//
// Expressions may reference `env.<NAME>` and `config_dir`, and call lower,
// upper, format and join.
package hcl
