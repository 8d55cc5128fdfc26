package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line flags from args (program name excluded).
// Nil or empty args produce an empty config.
//
// Flags:
//
//	-url             Notes API base URL
//	-timeout         request timeout (e.g. "30s")
//	-email           existing account e-mail
//	-new-email       e-mail for throwaway registrations
//	-password        password of the existing account
//	-new-password    alternative valid password
//	-target          "stub" or "remote"
//	-interval        repeat the smoke scenario every interval
//	-a               stub listen address in format [host]:[port]
//	-d               stub SQLite DSN
//	-log-level       log level
//	-c/-config       json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var stubAddress NetAddress
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet("notes", flag.ContinueOnError)
	fs.StringVar(&cfg.API.BaseURL, "url", "", "Notes API base URL")
	fs.DurationVar(&cfg.API.RequestTimeout, "timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Credentials.Email, "email", "", "Existing account e-mail")
	fs.StringVar(&cfg.Credentials.NewEmail, "new-email", "", "E-mail for throwaway registrations")
	fs.StringVar(&cfg.Credentials.Password, "password", "", "Existing account password")
	fs.StringVar(&cfg.Credentials.NewPassword, "new-password", "", "Alternative valid password")
	fs.StringVar(&cfg.Suite.Target, "target", "", "Run target: stub or remote")
	fs.DurationVar(&cfg.Suite.SmokeInterval, "interval", 0, "Repeat the smoke scenario every interval")
	fs.Var(&stubAddress, "a", "Stub net address host:port")
	fs.StringVar(&cfg.Stub.DSN, "d", "", "Stub SQLite DSN")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Stub.Address = stubAddress.String()
	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
