// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package ini is a small INI-file reader for RPG_RT.ini: [section] headers,
// name=value pairs, ';'-comments, and case-insensitive lookups keyed as
// "section.name", following the inih parser's grammar.
package ini

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/rpg2k/lcf"
)

// Config is a parsed INI document: every name=value pair found, keyed by
// "lowercased section.lowercased name" exactly as inireader.cpp's MakeKey
// does.
type Config struct {
	values map[string]string
}

// Parse reads an INI document from r. It does not stop at the first
// malformed line; malformed lines are simply skipped, matching ini_parse's
// "doesn't stop on first error" contract.
func Parse(r io.Reader) (*Config, error) {
	cfg := &Config{values: make(map[string]string)}
	section := ""
	lastKey := ""

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, ";") || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			section = strings.TrimSpace(trimmed[1 : len(trimmed)-1])
			lastKey = ""
			continue
		}

		// INI_ALLOW_MULTILINE: a line with no '=' and leading whitespace on
		// the original continues the previous key's value.
		if idx := strings.IndexByte(line, '='); idx < 0 {
			if lastKey != "" && (strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")) {
				key := makeKey(section, lastKey)
				cfg.values[key] += "\n" + trimmed
			}
			continue
		} else {
			name := strings.TrimSpace(line[:idx])
			value := strings.TrimSpace(line[idx+1:])
			if name == "" {
				continue
			}
			cfg.values[makeKey(section, name)] = value
			lastKey = name
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func makeKey(section, name string) string {
	return strings.ToLower(section) + "." + strings.ToLower(name)
}

// Get returns the value for section/name, or def if absent.
func (c *Config) Get(section, name, def string) string {
	if v, ok := c.values[makeKey(section, name)]; ok {
		return v
	}
	return def
}

// GetInteger parses section/name as a decimal or 0x-prefixed hex integer,
// returning def if the key is absent or unparseable — mirroring
// INIReader::GetInteger's strtol(value, &end, 0) behavior.
func (c *Config) GetInteger(section, name string, def int64) int64 {
	v := c.Get(section, name, "")
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 0, 64)
	if err != nil {
		return def
	}
	return n
}

// GetEncoding resolves the codepage an RPG_RT.ini declares for its sibling
// .ldb/.lmt/.lmu/.lsd files. RPG2k/2k3's RPG_RT.ini stores this as Encoding=
// under the [RPG_RT] section; an absent or unknown value reports ok=false.
func (c *Config) GetEncoding() (codepage string, ok bool) {
	v := c.Get("RPG_RT", "Encoding", "")
	if v == "" {
		return "", false
	}
	if _, err := lcf.CodepageToEncoding(v); err != nil {
		return "", false
	}
	return v, true
}
