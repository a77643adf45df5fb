// Package notifier provides the delivery side of a run.
//
// A Notifier delivers one embed. The Discord implementation posts it to the
// configured webhook; the dry-run implementation prints the webhook payload
// instead, which is what the --dry-run flag uses.
package notifier
