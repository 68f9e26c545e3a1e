package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// DefaultConfigFile is the nodeseed configuration file looked up in the working directory
	DefaultConfigFile = "nodeseed.yaml"

	// DefaultEnvFile is the environment file written into generated projects
	DefaultEnvFile = ".env"

	// DefaultProjectName is offered when prompting for a project name
	DefaultProjectName = "my-app"

	// DefaultDBUser is offered when prompting for the database user
	DefaultDBUser = "root"

	// DefaultDBHost is offered when prompting for the database host
	DefaultDBHost = "localhost"

	// DefaultDBPort is the MySQL port offered when prompting for the database port
	DefaultDBPort = 3306

	// DefaultAppPort is the fixed HTTP port written to every generated .env
	DefaultAppPort = 3000

	// DefaultNodeEnv is the fixed runtime mode written to every generated .env
	DefaultNodeEnv = "development"

	// DefaultPackageManager installs the generated project's dependencies
	DefaultPackageManager = "npm"

	// DefaultMySQLImage is the image started by the dev command
	DefaultMySQLImage = "mysql:8.4"
)

var (
	// DefaultProdPackages are installed into every generated project
	DefaultProdPackages = []string{"express", "mysql2", "dotenv", "cors", "body-parser"}

	// DefaultDevPackages are installed as development dependencies of every generated project
	DefaultDevPackages = []string{"@types/express", "@types/cors", "@types/node", "typescript", "tsx"}
)

// Keys of the generated .env file, in the order they are written.
const (
	EnvDBHost     = "DB_HOST"
	EnvDBPort     = "DB_PORT"
	EnvDBUser     = "DB_USER"
	EnvDBPassword = "DB_PASSWORD"
	EnvDBName     = "DB_NAME"
	EnvPort       = "PORT"
	EnvNodeEnv    = "NODE_ENV"
)
