/*
Package config loads the organizer's settings from YAML, HCL or JSON.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   HCL    | |   JSON   |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Reads a config file and picks the parser from its extension
- Fills defaults (six category table, batch size 100, a log file under the user cache directory)
- Validates categories, log level and exclude patterns
- Builds the category.Table handed to the pipeline

🔄 Flow:
 1. Load (explicit path) or Discover (.cleanmyfiles.* in a directory)
 2. Parser decodes, rejecting unknown fields
 3. Validate normalises extensions and checks the table
 4. Table() turns the categories into a lookup table

📝 Notes:
The directory value is kept as written. Callers pass it through ExpandPath
so that ~/Downloads works the same from every format. HCL files also get a
home variable:

	directory = "${home}/Downloads"

	category "Images" {
	  extensions = [".jpg", ".png"]
	}

🔍 Example:

	cfg, err := config.Discover(ctx, cwd)
	if err != nil {
		return err
	}
	table, err := cfg.Table()
*/
package config
