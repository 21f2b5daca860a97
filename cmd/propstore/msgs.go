package main

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Query and edit INI-backed property files"
	MsgGetShort     = "Print the value of a property"
	MsgSetShort     = "Set a property and write the file back"
	MsgKeysShort    = "List all property keys"
	MsgRenderShort  = "Print the file's property mapping as INI text"
	MsgExportShort  = "Export the property mapping to another format"
	MsgVersionShort = "Print version information"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFile     = "Property file to operate on"
	MsgFlagSections = "Treat the file as sectioned ([name] groups)"
	MsgFlagInclude  = "Extra directory to search when resolving the file (repeatable)"
	MsgFlagFormat   = "Output format: ini, yaml or toml"

	// Error messages
	MsgErrNotFound     = "property not found: %s"
	MsgErrNewSectioned = "cannot set into a sectioned file that does not exist yet: %s"
)

// Long messages
const (
	MsgRootLong = `propstore reads, queries, edits and rewrites INI-style property files.

Files are located through an include path: the literal path is tried
first, then each configured directory in order. A file can be flat
(key = value lines) or sectioned ([name] headers grouping keys).`

	MsgGetExample = `  # Flat file
  propstore -f app.properties get server.host

  # Sectioned file
  propstore -f app.ini --sections get user database`

	MsgSetExample = `  # Flat file
  propstore -f app.properties set server.host localhost

  # Sectioned file; the section must already exist
  propstore -f app.ini --sections set user admin database`
)
