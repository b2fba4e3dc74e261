package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/cloudybookclub/catalog-service/pkg/logger"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"CATALOG_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"CATALOG_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ"`
	WriteTimeout time.Duration
}

type Mongo struct {
	URI            string        `yaml:"uri" envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	Database       string        `yaml:"database" envconfig:"MONGO_DATABASE" default:"books"`
	ConnectTimeout time.Duration `yaml:"connectTimeout" envconfig:"MONGO_CONNECT_TIMEOUT" default:"10s"`
}

type GoogleBooks struct {
	SearchURL      string        `yaml:"searchUrl" envconfig:"GOOGLE_BOOKS_SEARCH_URL" default:"https://www.googleapis.com/books/v1/volumes?q="`
	GetByIDURL     string        `yaml:"getByIdUrl" envconfig:"GOOGLE_BOOKS_GET_BY_ID_URL" default:"https://www.googleapis.com/books/v1/volumes/"`
	CountryCode    string        `yaml:"countryCode" envconfig:"GOOGLE_BOOKS_COUNTRY_CODE" default:"country=GB"`
	ConnectTimeout time.Duration `yaml:"connectTimeout" envconfig:"GOOGLE_BOOKS_CONNECT_TIMEOUT" default:"5s"`
	ReadTimeout    time.Duration `yaml:"readTimeout" envconfig:"GOOGLE_BOOKS_READ_TIMEOUT" default:"10s"`
}

// Preprod carries the seeding switches as explicit config rather than
// ambient flags. Profile selects the runtime environment by name.
type Preprod struct {
	Profile      string `yaml:"profile" envconfig:"PROFILE" default:"dev"`
	ReloadData   bool   `yaml:"reloadData" envconfig:"RELOAD_DEVELOPMENT_DATA"`
	AutoAuthUser bool   `yaml:"autoAuthUser" envconfig:"AUTO_AUTH_USER"`
	BooksFile    string `yaml:"booksFile" envconfig:"BOOKS_DATA_FILE" default:"sample_data/books.data"`
	UsersFile    string `yaml:"usersFile" envconfig:"USERS_DATA_FILE" default:"sample_data/users.data"`
}

type Config struct {
	Server  HTTPServer  `yaml:"server"`
	Mongo   Mongo       `yaml:"mongo"`
	Google  GoogleBooks `yaml:"googleBooks"`
	Preprod Preprod     `yaml:"preprod"`
	Log     logger.Log  `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
