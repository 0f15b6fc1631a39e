// Package jobs provides scheduled background tasks for the ordering system.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and run their use case
// outside of any request.
//
// # Available Jobs
//
// ArchiveOrdersJob archives PROCESSED orders whose processing date is older
// than the download retention. Their items move to ARCHIVED with them.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(archiveHandler, jobs.ArchiveSettings{
//		Schedule:  "0 0 3 * * *",
//		Retention: 30 * 24 * time.Hour,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A run that fails is logged and retried at the next tick. Archiving is
// one transaction, so a failed run leaves every order as it was.
package jobs
