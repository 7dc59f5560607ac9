package config

import "github.com/spf13/viper"

type Config struct {
	S3       *S3Config      `mapstructure:"s3" yaml:"s3"`
	Dirs     DirsConfig     `mapstructure:"dirs" yaml:"dirs"`
	Organize OrganizeConfig `mapstructure:"organize" yaml:"organize"`
	Backup   BackupConfig   `mapstructure:"backup" yaml:"backup"`
}

type S3Config struct {
	Endpoint  string     `mapstructure:"endpoint" yaml:"endpoint"`
	Region    string     `mapstructure:"region" yaml:"region"`
	AccessKey string     `mapstructure:"access_key" yaml:"access_key"`
	SecretKey string     `mapstructure:"secret_key" yaml:"secret_key"`
	Bucket    string     `mapstructure:"bucket" yaml:"bucket"`
	TLS       *TLSConfig `mapstructure:"tls" yaml:"tls,omitempty"`
}

type TLSConfig struct {
	InsecureSkipVerify bool `mapstructure:"insecure_skip_verify" yaml:"insecure_skip_verify"`
}

type DirsConfig struct {
	Downloads string `mapstructure:"downloads" yaml:"downloads"`
	Backups   string `mapstructure:"backups" yaml:"backups"`
	Temp      string `mapstructure:"temp" yaml:"temp"`
}

type OrganizeConfig struct {
	// Categories maps a folder name to the file extensions it collects.
	// Extensions not listed anywhere fall back to "others".
	Categories map[string][]string `mapstructure:"categories" yaml:"categories"`
}

type BackupConfig struct {
	// At is the wall-clock trigger time for scheduled backups, "HH:MM".
	At string `mapstructure:"at" yaml:"at"`
}

func Default() *Config {
	return &Config{
		S3: &S3Config{
			Region: "us-east-1",
		},
		Dirs: DirsConfig{
			Downloads: "./downloads",
			Backups:   "./backups",
			Temp:      "./temp",
		},
		Organize: OrganizeConfig{
			Categories: map[string][]string{
				"images":    {".jpeg", ".jpg", ".png", ".gif"},
				"documents": {".pdf", ".doc", ".docx", ".txt", ".md"},
				"videos":    {".mpeg", ".mp4", ".mov"},
				"archives":  {".zip", ".tar", ".gz"},
			},
		},
		Backup: BackupConfig{
			At: "02:00",
		},
	}
}

func Unmarshal(v *viper.Viper) (*Config, error) {
	c := Default()
	if err := v.Unmarshal(c); err != nil {
		return nil, err
	}
	return c, nil
}
