// Package update checks an update feed for a release to offer.
//
// A feed is the electron-updater manifest (latest.yml or latest.json)
// published next to the installers. The checker fetches it once, compares
// the offered version with the running one and reports whether the update
// dialog should be shown. It never downloads or installs artifacts; that
// belongs to the host application.
//
// Example usage:
//
//	checker := update.NewChecker(feedURL)
//	result, err := checker.Check(ctx, currentVersion, skippedVersion)
//	if err != nil {
//	    // handle error
//	}
//	if result.Offer {
//	    // show the dialog with result.Info
//	}
package update
