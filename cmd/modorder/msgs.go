package modorder

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Consolidate mod catalogs and resolve load orders"
	MsgCatalogShort    = "List every mod known to the catalog"
	MsgValidateShort   = "Check the active load order against the catalog"
	MsgExportShort     = "Write the active load order as a settings file"
	MsgImportShort     = "Create a load order from a settings file"
	MsgOrderShort      = "Manage saved load orders"
	MsgOrderAddShort   = "Append mods to the active load order"
	MsgOrderRmShort    = "Remove mods from the active load order"
	MsgOrderMoveShort  = "Move a mod to a new position"
	MsgOrderShowShort  = "Show the active load order"
	MsgOrderListShort  = "List saved load orders"
	MsgOrderNewShort   = "Create a load order and make it active"
	MsgOrderDelShort   = "Delete a saved load order"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Status messages
	MsgOrderCreated  = "Created load order %q"
	MsgOrderDeleted  = "Deleted load order %q"
	MsgOrderImported = "Imported %d mods into load order %q"
	MsgModsAdded     = "Added %d mods to %q"
	MsgModsRemoved   = "Removed %d mods from %q"
	MsgModMoved      = "Moved %s to position %d"
	MsgManWritten    = "Wrote man pages to %s"

	// Error messages
	MsgErrInitPaths    = "failed to initialize paths"
	MsgErrNoCommand    = "no command specified"
	MsgErrPosition     = "position must be a positive number, got %q"
	MsgErrOpenSettings = "failed to open settings file"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Configuration file (default is $XDG_CONFIG_HOME/modorder/config.toml)"
	MsgFlagBuiltin   = "Manifest of mods bundled with the game (repeatable)"
	MsgFlagInstalled = "Manifest of user-installed mods (repeatable)"
	MsgFlagProject   = "Manifest of editor projects (repeatable)"
	MsgFlagFormat    = "Output format: auto, terminal, text or json"
	MsgFlagOrder     = "Load order to work on (default is the first saved order)"
	MsgFlagOutput    = "Settings file to write (default is standard output)"
	MsgFlagName      = "Name of the imported load order (default is the file name)"
	MsgFlagManDir    = "Directory to write man pages to"
)

// Long messages
const (
	MsgRootLong = `modorder merges mod catalogs from several storage locations, keeps named
load orders of active mods, checks them for missing mods, dependencies and
extension requirements, and writes the settings file the game reads.

Catalog sources are loader manifests in JSON, YAML or TOML passed with
--builtin, --installed and --project. They are folded in that order, so a
project copy of a mod wins over an installed one of the same version.`

	MsgValidateLong = `Validate checks the active load order against the catalog and reports:

  - entries that are not installed
  - dependencies of active mods that nothing provides
  - mods that need the runtime extension when it is missing or too old

Mods bundled with the game and identities listed under [ignore] in the
configuration are never reported.`

	MsgExportLong = `Export resolves the active load order into the sequence the game loads and
writes it as a settings document. Dependencies are placed before their
dependents; with export.auto_add_dependencies they are added even when the
order does not list them. The campaign mod leads the list.`

	MsgImportLong = `Import reads a settings document written by the game or another tool and
stores its mods as a load order. Mods bundled with the game are skipped.`

	MsgCompletionLong = `To load completions:

Bash:
  $ source <(modorder completion bash)

Zsh:
  $ modorder completion zsh > "${fpath[1]}/_modorder"

Fish:
  $ modorder completion fish | source

PowerShell:
  PS> modorder completion powershell | Out-String | Invoke-Expression`

	MsgUsageTemplate = `{{bold "USAGE:"}}{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{bold "ALIASES:"}}
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{bold "EXAMPLES:"}}
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

{{bold "COMMANDS:"}}{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{bold .Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{bold "FLAGS:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{bold "GLOBAL FLAGS:"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
)

// Examples
const (
	MsgExportExample = `  # Write the active order next to the game's profile
  modorder export --installed mods.json -o modsettings.lsx

  # Export a specific order as JSON report plus file
  modorder --order Campaign --format json export -o out.lsx`

	MsgOrderAddExample = `  modorder --installed mods.json order add 3f2b6d7e-5b1c-4b55-8d11-9f4e1c2d3a4b`
)
