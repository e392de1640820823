package options

var GcpProjectsOpt = Option{
	Name:        "project",
	Short:       "p",
	Description: "comma-separated list of GCP project IDs",
	Required:    true,
	Type:        String,
	Value:       "",
}

var GcpRegionsOpt = Option{
	Name:        "region",
	Short:       "r",
	Description: "comma-separated list of GCP regions",
	Required:    true,
	Type:        String,
	Value:       "",
}

var GcpCredentialsFileOpt = Option{
	Name:        "creds-file",
	Description: "path to a GCP service account credentials file (defaults to application default credentials)",
	Required:    false,
	Type:        String,
	Value:       "",
}
