package config

import (
	"errors"
	"flag"
	"fmt"
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

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
//	-hash-key response signing key
//	-method simulation method ("default", "statevector")
//	-shots default shot count
//	-max-shots maximum shot count per request
//	-max-qubits maximum number of qubits
//	-parallelism number of sampling goroutines
//	-seed random seed (0 = clock)
//	-server client: server base URL
//	-client-timeout client: request timeout
//	-probe-interval backend probe interval
//	-probe-shots backend probe shot count
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("circuit-runner", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var jsonConfigPath string
	var hashKey string
	var requestTimeout time.Duration
	var method string
	var shots, maxShots, maxQubits, parallelism int
	var seed uint64
	var adapterAddress string
	var adapterTimeout time.Duration
	var probeInterval time.Duration
	var probeShots int

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&hashKey, "hash-key", "", "Response signing key")
	fs.StringVar(&method, "method", "", "Simulation method (default, statevector)")
	fs.IntVar(&shots, "shots", 0, "Default shot count")
	fs.IntVar(&maxShots, "max-shots", 0, "Maximum shot count per request")
	fs.IntVar(&maxQubits, "max-qubits", 0, "Maximum number of qubits")
	fs.IntVar(&parallelism, "parallelism", 0, "Number of sampling goroutines")
	fs.Uint64Var(&seed, "seed", 0, "Random seed (0 = clock)")
	fs.StringVar(&adapterAddress, "server", "", "Server base URL used by the client")
	fs.DurationVar(&adapterTimeout, "client-timeout", 0, "Client request timeout")
	fs.DurationVar(&probeInterval, "probe-interval", 0, "Backend probe interval")
	fs.IntVar(&probeShots, "probe-shots", 0, "Backend probe shot count")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			HashKey: hashKey,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Simulator: Simulator{
			Method:       method,
			DefaultShots: shots,
			MaxShots:     maxShots,
			MaxQubits:    maxQubits,
			Parallelism:  parallelism,
			Seed:         seed,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
		},
		Workers: Workers{
			ProbeInterval: probeInterval,
			ProbeShots:    probeShots,
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
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
