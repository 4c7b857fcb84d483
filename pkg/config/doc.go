/*
Package config loads the optional saveslot configuration file.

	                +-------------+
	                |   Config    |
	                | (Settings)  |
	                +------+------+
	                       |
	   +----------+--------+--+----------+
	   |          |           |          |
	+--+---+  +---+--+    +---+--+   +---+--+
	| YAML |  | JSON |    | HCL  |   | TOML |
	+------+  +------+    +------+   +------+

🎯 Purpose:
- Describes where the game keeps its profiles and what a save file is
- Picks a parser from the file extension
- Fills defaults so an empty file (or no file) yields the GTA V layout

🔄 Flow:
1. Reads the file named by --config (skipped when the flag is empty)
2. Parses it with the matching Parser
3. Validate fills defaults and rejects unusable values

📝 Defaults:

	home_env       = "USERPROFILE" on windows, "HOME" elsewhere
	base_dir       = "Documents/Rockstar Games/GTA V"
	profiles_dir   = "Profiles"
	slots_dir      = "Slots"
	save_files_dir = "Save Files"
	save_prefix    = "SGTA"
	dated_prefix   = "dated-"
	dated_layout   = "2006-01-02_150405"
	mode           = "copy"

🔍 Example (HCL, the env object holds the process environment):

	base_dir = "${env.GAME_DOCS}/GTA V"
	exclude  = ["*.bak"]
*/
package config
