/*
Package status tracks the outcome of every move during an organize run.

	+-----------+   Result   +-----------+   Summary   +-----------+
	| Organizer | ---------> |  Tracker  | ----------> |    CLI    |
	| (worker)  |  Observe   | (counts)  |   Rows()    | (pterm)   |
	+-----------+            +-----------+             +-----------+

🎯 Purpose:
- Counts moved, duplicate, missing, failed and planned files per category
- Keeps failed and missing results so they can be listed afterwards
- Formats progress and per-file lines for the terminal

🔄 Flow:
 1. The pipeline calls Tracker.Observe once per move attempt
 2. The presentation goroutine polls Progress while the run is in flight
 3. Summary().Rows() feeds the final table

⚡ Concurrency:
Observe runs on the worker goroutine. Progress, Summary and Problems may be
called from any goroutine at the same time.

🔍 Example:

	tracker := status.New(table, zerolog.Ctx(ctx))
	pipeline, _ := operation.New(operation.Options{Table: table, Observer: tracker})

	moved, err := pipeline.Run(ctx, dir)

	for _, row := range tracker.Summary().Rows() {
		fmt.Println(row)
	}
*/
package status
