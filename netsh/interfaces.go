package netsh

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// Interface is one block of `wlan show interfaces` output keyed by field label.
type Interface map[string]string

func (i Interface) Name() string  { return i[FieldName] }
func (i Interface) State() string { return i[FieldState] }
func (i Interface) SSID() string  { return i[FieldSSID] }

// Connected reports whether the interface is associated with a network.
func (i Interface) Connected() bool {
	return strings.EqualFold(i.State(), "connected")
}

// ShowInterfaces lists the wireless interfaces and their current association.
func ShowInterfaces(ctx context.Context, r Runner, c Commands) ([]Interface, error) {
	output, err := r.Run(ctx, c.Interfaces...)
	if err != nil {
		return nil, fmt.Errorf("listing interfaces: %w", err)
	}
	return parseInterfaces(output)
}

// parseInterfaces splits "label : value" lines into records. A record starts at
// each Name line; anything before the first one is preamble. Values keep any
// further colons (MAC addresses, BSSIDs).
func parseInterfaces(output string) ([]Interface, error) {
	var records []Interface
	var current Interface
	scanner := bufio.NewScanner(strings.NewReader(output))
	scanner.Buffer(nil, len(output)+1)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if key == "" {
			continue
		}
		if key == FieldName {
			if current != nil {
				records = append(records, current)
			}
			current = make(Interface)
		}
		if current == nil {
			continue
		}
		current[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading interface output: %w", err)
	}
	if current != nil {
		records = append(records, current)
	}
	return records, nil
}
