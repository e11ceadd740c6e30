// Package box provides Box, the mapping type returned by the configuration and JSON
// loaders of mlio.
//
// A Box is a map[string]any and can be used like one. In addition it offers access
// by dotted path, typed getters and decoding into structs:
//
//	cfg, err := files.ReadYAML("config/config.yaml")
//	root := cfg["artifacts_root"]                    // plain map access
//	url := cfg.GetString("data_ingestion.source_url") // dotted path
//	alpha := cfg.GetFloat64("model.params.alpha")
//
//	var ingestion struct {
//	    RootDir   string `mapstructure:"root_dir"`
//	    SourceURL string `mapstructure:"source_url"`
//	}
//	err = cfg.Sub("data_ingestion").Decode(&ingestion)
package box
