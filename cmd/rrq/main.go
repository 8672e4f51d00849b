// Command rrq issues a single DNS query against a configured nameserver
// and prints the answer records in zone-file form.
//
// Usage:
//
//	rrq <name> [type] [class]
//
// Configuration comes from RRQ_* environment variables; see AppConfig.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/haukened/rr-stub/client"
	"github.com/haukened/rr-stub/common/log"
	"github.com/haukened/rr-stub/domain"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return 2
	}

	logger, err := log.Configure(cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging configuration error: %v\n", err)
		return 2
	}

	name, qtype, qclass, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "usage: rrq <name> [type] [class]: %v\n", err)
		return 2
	}

	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid timeout %q: %v\n", cfg.Timeout, err)
		return 2
	}

	strategy, _ := client.ProtocolStrategyFromString(cfg.Protocol)
	c, err := client.New(client.Config{
		Nameserver: cfg.Nameserver,
		Strategy:   strategy,
		BufferSize: cfg.BufferSize,
		Timeout:    timeout,
		EDNS: client.EDNS{
			Enabled:        cfg.EDNS,
			UDPPayloadSize: uint16(cfg.EDNSPayloadSize),
		},
		Logger: logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "client error: %v\n", err)
		return 2
	}

	rrset, err := c.Query(context.Background(), name, qtype, qclass)
	switch {
	case errors.Is(err, domain.ErrNoAnswer):
		fmt.Fprintln(os.Stderr, "no answer")
		return 1
	case errors.Is(err, domain.ErrResponseCode):
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	case err != nil:
		fmt.Fprintf(os.Stderr, "query failed: %v\n", err)
		return 1
	}

	for _, rr := range rrset.Records {
		fmt.Println(rr)
	}
	return 0
}

// parseArgs reads "name [type] [class]", defaulting to an IN A query.
func parseArgs(args []string) (string, domain.RRType, domain.RRClass, error) {
	if len(args) < 1 || len(args) > 3 {
		return "", 0, 0, fmt.Errorf("expected 1 to 3 arguments, got %d", len(args))
	}
	name := args[0]
	qtype := domain.RRTypeA
	qclass := domain.RRClassIN
	if len(args) >= 2 {
		t, ok := domain.RRTypeFromString(args[1])
		if !ok {
			return "", 0, 0, fmt.Errorf("unknown record type %q", args[1])
		}
		qtype = t
	}
	if len(args) == 3 {
		c, ok := domain.RRClassFromString(args[2])
		if !ok {
			return "", 0, 0, fmt.Errorf("unknown record class %q", args[2])
		}
		qclass = c
	}
	return name, qtype, qclass, nil
}
