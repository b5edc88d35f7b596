/*
Package operation implements the classify-and-move pipeline.

	+-------------+     +-------------+     +-------------+
	|   Folders   |     |   Scanner   |     |   Planner   |
	|  (setup)    | --> | (pkg/scan)  | --> | (classify)  |
	+-------------+     +-------------+     +------+------+
	                                               |
	                    +-------------+     +------+------+
	                    |  Organizer  | <-- |    Mover    |
	                    |  (batches)  |     | (one file)  |
	                    +-------------+     +-------------+

🎯 Purpose:
- Create one folder per category under the base directory
- Turn scanned records into (source, destination, category) plans
- Move each file, skipping duplicates and vanished sources
- Count what moved and report a summary

🔄 Flow:
1. EnsureCategoryFolders runs once per invocation
2. Scan yields records lazily, Plan maps them lazily
3. Organize pulls plans in batches and hands each to the Mover
4. The Mover logs exactly one line per plan

⚡ Failure rules:
- A missing source is a warning, a taken destination is an info-level skip
- I/O errors are logged as errors and the run continues
- Only a bad base directory is returned as an error
- The destination file always wins, the source stays where it was
- Cancelling ctx stops the run at the next batch boundary

🧵 Concurrency:
Every step is synchronous and sequential. A front-end that must stay
responsive hands the work to a Runner, which can start it on a worker
goroutine and report back through a Job.

🔍 Example:

	p, err := operation.New(operation.Options{Logger: logger})
	if err != nil {
		return err
	}
	moved, err := p.Run(ctx, dir)
*/
package operation
