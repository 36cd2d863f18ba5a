package config

import "os"

// Config holds server-level settings read from the environment.
type Config struct {
	MongoURI      string
	MongoDatabase string
	RedisAddr     string
	HTTPPort      string
	QuestionsFile string
	PartTwoFile   string
	SummariesDir  string
}

// Load reads configuration from the environment with local defaults.
func Load() *Config {
	return &Config{
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "intakeflow"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:      getEnv("PORT", "8080"),
		QuestionsFile: getEnv("QUESTIONS_FILE", "data/questions.json"),
		PartTwoFile:   getEnv("PART2_FILE", "data/part2.json"),
		SummariesDir:  getEnv("SUMMARIES_DIR", "summaries"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
