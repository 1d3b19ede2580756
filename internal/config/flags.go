package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface. An empty host means all interfaces.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:port
//	-d database DSN
//	-c/-config json file path with configs
//	-jwt-secret session signing key
//	-jwt-algorithm session signing algorithm
//	-jwt-expire-minutes session lifetime in minutes
//	-encryption-key wellness notes encryption secret
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level zerolog level
//	-test-mode use the log mailer and disable rate limiting
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var jwtSecret string
	var jwtAlgorithm string
	var jwtExpireMinutes int
	var encryptionKey string
	var requestTimeout time.Duration
	var logLevel string
	var testMode bool

	fs := flag.NewFlagSet("nutri-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address [host]:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&jwtSecret, "jwt-secret", "", "Session signing key")
	fs.StringVar(&jwtAlgorithm, "jwt-algorithm", "", "Session signing algorithm (HS256, HS384, HS512)")
	fs.IntVar(&jwtExpireMinutes, "jwt-expire-minutes", 0, "Session lifetime in minutes")
	fs.StringVar(&encryptionKey, "encryption-key", "", "Wellness notes encryption secret")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.BoolVar(&testMode, "test-mode", false, "Use the log mailer and disable rate limiting")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogLevel:      logLevel,
			TestMode:      testMode,
			EncryptionKey: encryptionKey,
		},
		Auth: Auth{
			SecretKey:     jwtSecret,
			Algorithm:     jwtAlgorithm,
			ExpireMinutes: jwtExpireMinutes,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
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

// Set parses the input string of form [host]:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// empty or "localhost".
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
		return errors.New("port number is a positive integer up to 65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
