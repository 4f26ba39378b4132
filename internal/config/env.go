package config

import (
	"fmt"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"
)

func requriedString(key string) (string, error) {
	variable, isOk := os.LookupEnv(key)
	if !isOk || strings.TrimSpace(variable) == "" {
		return "", fmt.Errorf("missing requried env var: %s", key)
	}
	return strings.TrimSpace(variable), nil
}

func optionalString(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func stringWithDefault(key, def string) string {
	variable, isOk := os.LookupEnv(key)
	if !isOk || strings.TrimSpace(variable) == "" {
		return def
	}
	return strings.TrimSpace(variable)
}

func intWithDefault(key string, def int) (int, error) {
	variable, isOk := os.LookupEnv(key)
	if !isOk || strings.TrimSpace(variable) == "" {
		return def, nil
	}
	number, err := strconv.Atoi(strings.TrimSpace(variable))
	if err != nil {
		return 0, fmt.Errorf("invalid int for %s: %w", key, err)
	}
	return number, nil
}

// durationWithDefault accepts Go durations ("8s") or a bare number of seconds.
func durationWithDefault(key string, def time.Duration) (time.Duration, error) {
	variable, isOk := os.LookupEnv(key)
	if !isOk || strings.TrimSpace(variable) == "" {
		return def, nil
	}
	variable = strings.TrimSpace(variable)
	if seconds, err := strconv.Atoi(variable); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}
	d, err := time.ParseDuration(variable)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %w", key, err)
	}
	return d, nil
}

// prefixList reads a comma separated list of IPs or CIDRs. A bare IP is a
// single-address prefix.
func prefixList(key string) ([]netip.Prefix, error) {
	variable := strings.TrimSpace(os.Getenv(key))
	if variable == "" {
		return nil, nil
	}
	var prefixes []netip.Prefix
	for _, part := range strings.Split(variable, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.Contains(part, "/") {
			p, err := netip.ParsePrefix(part)
			if err != nil {
				return nil, fmt.Errorf("invalid prefix for %s: %w", key, err)
			}
			prefixes = append(prefixes, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(part)
		if err != nil {
			return nil, fmt.Errorf("invalid address for %s: %w", key, err)
		}
		prefixes = append(prefixes, netip.PrefixFrom(addr.Unmap(), addr.Unmap().BitLen()))
	}
	return prefixes, nil
}
