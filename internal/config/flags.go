package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

// NetAddress is a host:port pair usable as a flag.Value.
type NetAddress struct {
	Host string
	Port int
}

func flagArgs() []string {
	return os.Args[1:]
}

// parseFlags parses args into a partial config.
//
// Flags:
//
//	-a                      backend listen address host:port
//	-l                      terminal local API address host:port
//	-b                      backend base URL used by the terminal
//	-d                      backend PostgreSQL DSN
//	-s                      terminal SQLite file path
//	-c / -config            JSON config file path
//	-token-sign-key         terminal token signing key
//	-token-issuer           terminal token issuer
//	-token-duration         terminal token lifetime (e.g. 24h)
//	-terminal-id            terminal identifier (token subject)
//	-hash-key               HashSHA256 integrity key
//	-request-timeout        backend request timeout
//	-adapter-timeout        terminal outbound request timeout
//	-sync-interval          periodic reconciliation interval
//	-connectivity-interval  connectivity probe interval
//	-initial-sync-delay     delay before the startup reconciliation
//	-broker-url             AMQP URL for sale events
//	-broker-exchange        AMQP exchange
//	-broker-queue           AMQP queue / routing key
//	-log-file               terminal log file
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("pos-lite", flag.ContinueOnError)

	var serverAddress, apiAddress NetAddress
	var cfg StructuredConfig

	fs.Var(&serverAddress, "a", "Backend listen address host:port")
	fs.Var(&apiAddress, "l", "Terminal local API address host:port")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "b", "", "Backend base URL")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.Local.Path, "s", "", "Local SQLite file path")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.StringVar(&cfg.App.TerminalID, "terminal-id", "", "Terminal identifier")
	fs.StringVar(&cfg.App.HashKey, "hash-key", "", "Body integrity hash key")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Terminal log file")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Backend request timeout (e.g., 30s)")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "adapter-timeout", 0, "Outbound request timeout (e.g., 10s)")
	fs.DurationVar(&cfg.Workers.SyncInterval, "sync-interval", 0, "Periodic sync interval (e.g., 5m)")
	fs.DurationVar(&cfg.Workers.ConnectivityInterval, "connectivity-interval", 0, "Connectivity probe interval")
	fs.DurationVar(&cfg.Workers.InitialSyncDelay, "initial-sync-delay", 0, "Delay before startup sync")
	fs.StringVar(&cfg.Broker.URL, "broker-url", "", "AMQP URL")
	fs.StringVar(&cfg.Broker.Exchange, "broker-exchange", "", "AMQP exchange")
	fs.StringVar(&cfg.Broker.Queue, "broker-queue", "", "AMQP queue")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.API.Address = apiAddress.String()

	return &cfg, nil
}

// String returns host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be an IP literal, "localhost" or
// empty (all interfaces).
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
		return errors.New("port number must be in 1..65535")
	}

	if host != "localhost" && host != "" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

var _ flag.Value = (*NetAddress)(nil)
