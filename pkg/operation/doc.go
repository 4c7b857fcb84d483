/*
Package operation turns command-line requests into save-file operations and
runs them over every profile.

	+-------------+
	|   Request   |
	|   (flags)   |
	+------+------+
	       |  Build
	+------+------+
	| []Operation |
	+------+------+
	       |  Runner.Run, for each profile in order
	+------+------+
	|  transfer   |
	|  slot       |
	+-------------+

🎯 Purpose:
- Maps each flag to one Operation
- Runs every operation against every profile, one after another
- Stops at the first error

🔄 Order within a profile is fixed, whatever order the flags were given in:

	save, load, load-save-file, save-dated, clear-profile,
	load-nth-newest-slot, delete-nth-newest-slot

📝 Semantics:
- save/load create the slot if it does not exist. Loading a fresh slot therefore
  leaves the profile with no save files.
- load-save-file picks, among the directories under "Save Files" whose name
  contains the argument, the one with the greatest name.
- Ranked operations do nothing when the rank is past the last slot.
- Removing the emptied directory of a deleted slot is best effort.

🔍 Example:

	ops := operation.Build(opts, operation.Request{Save: "before-heist"})
	runner := operation.NewRunner(console)
	summary, err := runner.Run(ctx, profiles, ops)
*/
package operation
