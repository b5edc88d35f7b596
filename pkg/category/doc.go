/*
Package category holds the extension lookup table that decides where a file goes.

	+--------------+
	|    Table     |
	| (name->exts) |
	+------+-------+
	       |
	+------+-------+
	|   Classify   |
	| (ext->name)  |
	+--------------+

🎯 Purpose:
- Keep the ordered mapping of category name to extension set
- Map an extension to exactly one category, falling back when nothing matches

⚡ Rules:
- Lookup lowercases the extension first
- Table order decides ties, the first category listing an extension owns it
- Only the last dot-segment of a name is an extension (".tar.gz" is ".gz")
- Category names are used verbatim as folder names

A Table is a plain value. Callers build one (Default or from config) and hand it
to the scanner and planner, nothing in this package is process-wide state.
*/
package category
