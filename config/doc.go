// Package config loads the scalus application configuration and the
// appsettings file that sits next to the binary.
//
// The application configuration maps URL protocols to applications. Each
// application names the parser that decomposes the URL, how the connection
// profile is generated, and the command that consumes it:
//
//	protocols:
//	  - protocol: rdp
//	    appId: mstsc
//	applications:
//	  - id: mstsc
//	    name: Remote Desktop
//	    platforms: [windows]
//	    protocol: rdp
//	    parser:
//	      parserId: rdp
//	      useDefaultTemplate: true
//	      options: ["wait:10"]
//	    exec: mstsc.exe
//	    args: ["%GeneratedFile%"]
//
// Files are decoded with gopkg.in/yaml.v3, so the JSON form used by older
// installations loads unchanged.
package config
