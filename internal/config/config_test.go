package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func validConfig() *Config {
	return &Config{
		AWS: AWSConfig{
			AccessKeyID:     "AKIA000",
			SecretAccessKey: "secret",
			Region:          "eu-west-1",
			Bucket:          "backups",
		},
	}
}

func TestLoad(t *testing.T) {
	Convey("Given configuration from the environment", t, func() {
		t.Setenv("AWS_ACCESS_KEY_ID", "AKIA000")
		t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
		t.Setenv("AWS_S3_REGION", "eu-west-1")
		t.Setenv("AWS_S3_BUCKET", "backups")

		Convey("When all required variables are present", func() {
			cfg, err := Load()

			Convey("It should load with defaults applied", func() {
				So(err, ShouldBeNil)
				So(cfg.AWS.Bucket, ShouldEqual, "backups")
				So(cfg.RunOnStartup, ShouldBeFalse)
				So(cfg.LogLevel, ShouldEqual, "info")
				So(cfg.Databases, ShouldBeEmpty)
			})
		})

		Convey("When DATABASES holds several URIs with stray spaces", func() {
			t.Setenv("DATABASES", "mysql://u:p@h:3306/a, postgresql://u:p@h:5432/b ,")
			cfg, err := Load()

			Convey("It should split and trim the list", func() {
				So(err, ShouldBeNil)
				So(cfg.Databases, ShouldResemble, []string{
					"mysql://u:p@h:3306/a",
					"postgresql://u:p@h:5432/b",
				})
			})
		})

		Convey("When RUN_ON_STARTUP and CRON are set", func() {
			t.Setenv("RUN_ON_STARTUP", "true")
			t.Setenv("CRON", "0 3 * * *")
			cfg, err := Load()

			Convey("Both triggers should be configured", func() {
				So(err, ShouldBeNil)
				So(cfg.RunOnStartup, ShouldBeTrue)
				So(cfg.Cron, ShouldEqual, "0 3 * * *")
			})
		})

		Convey("When CRON is not a valid expression", func() {
			t.Setenv("CRON", "not a schedule")
			_, err := Load()

			Convey("It should fail at startup", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "CRON expression")
			})
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given config validation", t, func() {
		Convey("Each missing AWS variable should be rejected", func() {
			cases := []struct {
				name   string
				mutate func(*Config)
			}{
				{"AWS_ACCESS_KEY_ID", func(c *Config) { c.AWS.AccessKeyID = "" }},
				{"AWS_SECRET_ACCESS_KEY", func(c *Config) { c.AWS.SecretAccessKey = "" }},
				{"AWS_S3_REGION", func(c *Config) { c.AWS.Region = "" }},
				{"AWS_S3_BUCKET", func(c *Config) { c.AWS.Bucket = "" }},
			}

			for _, tc := range cases {
				cfg := validConfig()
				tc.mutate(cfg)

				err := cfg.Validate()
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, tc.name)
			}
		})

		Convey("A GDrive credentials file without a folder should be rejected", func() {
			cfg := validConfig()
			cfg.GDrive.CredentialsFile = "/etc/dumpship/sa.json"

			err := cfg.Validate()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "GDRIVE_FOLDER_ID")
		})

		Convey("A Telegram token without a chat should be rejected", func() {
			cfg := validConfig()
			cfg.Telegram.BotToken = "123:abc"

			err := cfg.Validate()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "TELEGRAM_CHAT_ID")
		})

		Convey("A complete config should validate", func() {
			So(validConfig().Validate(), ShouldBeNil)
		})
	})
}
