package config

import (
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/dmitrijs2005/bookshelf/internal/flagx"
	"github.com/dmitrijs2005/bookshelf/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Interval fields use
// timex.Duration so both "1s" and integer nanoseconds are accepted.
// Absent or zero-valued fields leave the current Config value untouched.
type JsonConfig struct {
	EndpointAddrGRPC     string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP     string         `json:"endpoint_addr_http"`
	DatabaseDSN          string         `json:"database_dsn"`
	SecretKey            string         `json:"secret_key"`
	LogLevel             string         `json:"log_level"`
	PhysicalPageSize     int            `json:"physical_page_size"`
	MaxPageFetches       int            `json:"max_page_fetches"`
	MaxPageSize          int            `json:"max_page_size"`
	OpenBDBaseURL        string         `json:"openbd_base_url"`
	RakutenBaseURL       string         `json:"rakuten_base_url"`
	RakutenApplicationID string         `json:"rakuten_application_id"`
	LookupTimeout        timex.Duration `json:"lookup_timeout"`
	S3RootUser           string         `json:"s3_root_user"`
	S3RootPassword       string         `json:"s3_root_password"`
	S3Bucket             string         `json:"s3_bucket"`
	S3Region             string         `json:"s3_region"`
	S3BaseEndpoint       string         `json:"s3_base_endpoint"`
	ExportURLValidity    timex.Duration `json:"export_url_validity"`
}

// parseJson overlays values from the file named by -c/-config (or
// $BOOKSHELF_CONFIG). Without a path it does nothing. An unreadable file or
// invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.LogLevel, c.LogLevel)
	setInt(&config.PhysicalPageSize, c.PhysicalPageSize)
	setInt(&config.MaxPageFetches, c.MaxPageFetches)
	setInt(&config.MaxPageSize, c.MaxPageSize)
	setString(&config.OpenBDBaseURL, c.OpenBDBaseURL)
	setString(&config.RakutenBaseURL, c.RakutenBaseURL)
	setString(&config.RakutenApplicationID, c.RakutenApplicationID)
	if c.LookupTimeout.Duration > 0 {
		config.LookupTimeout = c.LookupTimeout.Duration
	}
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	if c.ExportURLValidity.Duration > 0 {
		config.ExportURLValidity = c.ExportURLValidity.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}
