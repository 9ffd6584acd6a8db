package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
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

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-rate-limit-rps per-client requests per second
//	-rate-limit-burst per-client burst size
//	-trusted-proxies comma-separated proxy addresses or CIDR prefixes
//	-server catalog API address used by the client
//	-adapter-timeout client request timeout
//	-refresh-interval client catalog refresh interval
//	-formats YAML file with extra access-code formats
//	-default-format access-code format selected on open
//	-fold-case accept lower-case letters in access codes
//	-version application version
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(programName(), flag.ContinueOnError)

	var serverAddress NetAddress
	var requestTimeout, adapterTimeout, refreshInterval time.Duration
	var rateLimitRPS float64
	var rateLimitBurst int
	var adapterAddress, formatsFile, defaultFormat, version, jsonConfigPath, trustedProxies string
	var foldCase bool

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Float64Var(&rateLimitRPS, "rate-limit-rps", 0, "Per-client requests per second")
	fs.IntVar(&rateLimitBurst, "rate-limit-burst", 0, "Per-client burst size")
	fs.StringVar(&trustedProxies, "trusted-proxies", "", "Comma-separated trusted proxy addresses or CIDR prefixes")
	fs.StringVar(&adapterAddress, "server", "", "Catalog API address")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Client request timeout (e.g., 15s)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Catalog refresh interval (e.g., 5m)")
	fs.StringVar(&formatsFile, "formats", "", "YAML file with access-code formats")
	fs.StringVar(&defaultFormat, "default-format", "", "Access-code format selected on open")
	fs.BoolVar(&foldCase, "fold-case", false, "Accept lower-case letters in access codes")
	fs.StringVar(&version, "version", "", "Application version")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version:       version,
			FormatsFile:   formatsFile,
			DefaultFormat: defaultFormat,
			CaseFolding:   foldCase,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			RateLimitRPS:   rateLimitRPS,
			RateLimitBurst: rateLimitBurst,
			TrustedProxies: splitList(trustedProxies),
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
		},
		Workers: Workers{
			CatalogRefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// splitList splits a comma-separated flag value, dropping blank entries.
// It returns nil for an empty value.
func splitList(value string) []string {
	return cleanList(strings.Split(value, ","))
}

func programName() string {
	if len(os.Args) == 0 {
		return "access-desk"
	}
	return os.Args[0]
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
