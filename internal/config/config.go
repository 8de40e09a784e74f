package config

type Config struct {
	Environment Environment
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL"`
	DataPath    string `env:"DATA_PATH" envDefault:"data"`
	UploadsPath string `env:"UPLOADS_PATH" envDefault:"uploads"`

	Auth    Auth
	Yoco    Yoco    `envPrefix:"YOCO_"`
	Courier Courier `envPrefix:"TCG_"`
}

type Auth struct {
	StaffSecret  string `env:"JWT_SECRET" envDefault:"goat-grids-secret-change-in-production"`
	MemberSecret string `env:"MEMBER_JWT_SECRET" envDefault:"goat-grids-member-secret-change-in-production"`
}

type Yoco struct {
	BaseApiURL string `env:"BASE_API_URL" envDefault:"https://payments.yoco.com"`
	SecretKey  string `env:"SECRET_KEY"`
}

// Courier holds The Courier Guy (ShipLogic) API settings.
type Courier struct {
	BaseApiURL string `env:"BASE_API_URL" envDefault:"https://api.shiplogic.com/v2"`
	APIKey     string `env:"API_KEY"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"3000"`
}
