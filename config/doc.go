// Package config loads the run configuration of the circuittrace command from
// an optional HCL file. Every attribute is optional; absent attributes keep
// their Default values.
//
//	discipline         = "queue"   # stack | queue
//	output             = "json"    # text | json | yaml
//	log_level          = "debug"   # debug | info | warn | error
//	log_format         = "text"    # text | json
//	max_states         = 1000000   # 0 disables the limit
//	prune              = true
//	reachability_check = true
package config
