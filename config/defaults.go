package config

import (
	"wlanctl/netsh"
	"wlanctl/wlan"
)

func boolPtr(b bool) *bool { return &b }

func DefaultConfig() Config {
	cmds := netsh.DefaultCommands()
	return Config{
		Tool:   netsh.DefaultTool,
		Marker: wlan.DefaultMarker,
		Commands: CommandsConfig{
			Scan:       cmds.Scan,
			Connect:    cmds.Connect,
			Disconnect: cmds.Disconnect,
			Interfaces: cmds.Interfaces,
		},
		UI: UIConfig{
			LogFile:        "wlanctl-debug.log",
			RefreshOnStart: boolPtr(true),
			LogHeight:      8,
		},
	}
}
