package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"sports-admin-service/internal/utils/runtime"
)

const (
	portFlag         = "port"
	developmentFlag  = "development"
	repositoryFlag   = "repository"
	mongoDBURIFlag   = "mongodb-uri"
	kafkaEnabledFlag = "kafka-enabled"
	kafkaHostFlag    = "kafka-host"
	kafkaPortFlag    = "kafka-port"
	menuFileFlag     = "menu-file"
)

// Repository backend selectors.
const (
	RepositoryMemory = "memory"
	RepositoryMongo  = "mongo"
)

type Config struct {
	Kafka   KafkaConfig
	MongoDB MongoDBConfig

	Development bool

	// Repository selects the backing store: "memory" or "mongo".
	Repository string

	// MenuFile optionally points at a YAML menu tree; empty means the
	// built-in default tree.
	MenuFile string

	HTTPPort int
}

type KafkaConfig struct {
	Enabled bool
	Host    string
	Port    int
}

type MongoDBConfig struct {
	URI string
}

func LoadGlobalConfig() Config {
	viper.SetDefault(portFlag, 8080)
	viper.SetDefault(developmentFlag, true)
	viper.SetDefault(repositoryFlag, RepositoryMemory)
	viper.SetDefault(mongoDBURIFlag, "mongodb://localhost:27017")
	viper.SetDefault(kafkaEnabledFlag, false)
	viper.SetDefault(kafkaHostFlag, "localhost")
	viper.SetDefault(kafkaPortFlag, 9092)
	viper.SetDefault(menuFileFlag, "")

	pflag.Int32(portFlag, viper.GetInt32(portFlag), "HTTP port")
	pflag.Bool(developmentFlag, viper.GetBool(developmentFlag), "Development mode")
	pflag.String(repositoryFlag, viper.GetString(repositoryFlag), "Repository backend (memory or mongo)")
	pflag.String(mongoDBURIFlag, viper.GetString(mongoDBURIFlag), "MongoDB URI")
	pflag.Bool(kafkaEnabledFlag, viper.GetBool(kafkaEnabledFlag), "Publish events to Kafka")
	pflag.String(kafkaHostFlag, viper.GetString(kafkaHostFlag), "Kafka host")
	pflag.Int32(kafkaPortFlag, viper.GetInt32(kafkaPortFlag), "Kafka port")
	pflag.String(menuFileFlag, viper.GetString(menuFileFlag), "Menu tree YAML file")
	pflag.Parse()

	// Bind the viper flags to environment variables
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	runtime.Must(viper.BindEnv(portFlag))
	runtime.Must(viper.BindEnv(developmentFlag))
	runtime.Must(viper.BindEnv(repositoryFlag))
	runtime.Must(viper.BindEnv(mongoDBURIFlag))
	runtime.Must(viper.BindEnv(kafkaEnabledFlag))
	runtime.Must(viper.BindEnv(kafkaHostFlag))
	runtime.Must(viper.BindEnv(kafkaPortFlag))
	runtime.Must(viper.BindEnv(menuFileFlag))

	return Config{
		Kafka: KafkaConfig{
			Enabled: viper.GetBool(kafkaEnabledFlag),
			Host:    viper.GetString(kafkaHostFlag),
			Port:    int(viper.GetInt32(kafkaPortFlag)),
		},
		MongoDB: MongoDBConfig{
			URI: viper.GetString(mongoDBURIFlag),
		},
		Development: viper.GetBool(developmentFlag),
		Repository:  viper.GetString(repositoryFlag),
		MenuFile:    viper.GetString(menuFileFlag),
		HTTPPort:    int(viper.GetInt32(portFlag)),
	}
}
