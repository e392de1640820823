package options

var OutputOpt = Option{
	Name:        "output",
	Short:       "o",
	Description: "output directory",
	Required:    false,
	Type:        String,
	Value:       "output",
}

var VerboseOpt = Option{
	Name:        "verbose",
	Short:       "v",
	Description: "echo each collected resource to the console",
	Required:    false,
	Type:        Bool,
	Value:       "false",
}
