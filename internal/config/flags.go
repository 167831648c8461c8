package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args (without the program
// name). Positional arguments that follow the flags are returned in
// StructuredConfig.Args.
//
// Flags:
//
//	-a / -address       dataset API base URL
//	-api-key            API key
//	-workspace          workspace name
//	-log-level          log level (debug, info, warn, error)
//	-request-timeout    API request timeout (e.g. "30s")
//	-retry-attempts     retries of transient upload failures
//	-retry-backoff      base retry backoff (e.g. "500ms")
//	-d                  staging store DSN
//	-flush-interval     flush job interval (e.g. "30s")
//	-batch-size         items per API request
//	-flush-limit        staged items read per flush
//	-max-attempts       failed flushes before an item is marked failed
//	-metrics-address    metrics endpoint address in format [host]:[port]
//	-dataset-name       target dataset name
//	-dataset-id         target dataset id
//	-skip-dedup         disable content-hash deduplication
//	-c / -config        json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		apiAddress     string
		apiKey         string
		workspace      string
		logLevel       string
		requestTimeout time.Duration
		retryAttempts  uint64
		retryBackoff   time.Duration
		databaseDSN    string
		flushInterval  time.Duration
		batchSize      int
		flushLimit     int
		maxAttempts    int
		metricsAddress NetAddress
		datasetName    string
		datasetID      string
		skipDedup      bool
		jsonConfigPath string
	)

	fs := flag.NewFlagSet("loader", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&apiAddress, "a", "", "Dataset API base URL")
	fs.StringVar(&apiAddress, "address", "", "Dataset API base URL (alias)")
	fs.StringVar(&apiKey, "api-key", "", "API key")
	fs.StringVar(&workspace, "workspace", "", "Workspace name")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Uint64Var(&retryAttempts, "retry-attempts", 0, "Retries of transient upload failures")
	fs.DurationVar(&retryBackoff, "retry-backoff", 0, "Base retry backoff (e.g., 500ms)")
	fs.StringVar(&databaseDSN, "d", "", "Staging store DSN")
	fs.DurationVar(&flushInterval, "flush-interval", 0, "Flush interval (e.g., 30s)")
	fs.IntVar(&batchSize, "batch-size", 0, "Items per API request")
	fs.IntVar(&flushLimit, "flush-limit", 0, "Staged items read per flush")
	fs.IntVar(&maxAttempts, "max-attempts", 0, "Failed flushes before an item is marked failed")
	fs.Var(&metricsAddress, "metrics-address", "Metrics net address host:port")
	fs.StringVar(&datasetName, "dataset-name", "", "Target dataset name")
	fs.StringVar(&datasetID, "dataset-id", "", "Target dataset id")
	fs.BoolVar(&skipDedup, "skip-dedup", false, "Disable content-hash deduplication")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			APIKey:    apiKey,
			Workspace: workspace,
			LogLevel:  logLevel,
		},
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			RequestTimeout: requestTimeout,
			RetryAttempts:  retryAttempts,
			RetryBackoff:   retryBackoff,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers: Workers{
			FlushInterval: flushInterval,
			BatchSize:     batchSize,
			FlushLimit:    flushLimit,
			MaxAttempts:   maxAttempts,
		},
		Server: Server{
			MetricsAddress: metricsAddress.String(),
		},
		Target: Target{
			DatasetName:       datasetName,
			DatasetID:         datasetID,
			SkipDeduplication: skipDedup,
		},
		JSONFilePath: jsonConfigPath,
		Args:         fs.Args(),
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty (all interfaces), and returns an error if the format
// or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
