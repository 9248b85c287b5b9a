// Package dip illustrates the Dependency Inversion Principle.
//
// High-level policy should not depend on low-level detail; both should depend on
// abstractions. LegacyNotifier builds its own EmailClient, so changing the channel
// (or testing without sending mail) means editing the notifier.
//
// Notifier depends only on Sender. EmailSender, SMSSender and KafkaSender are details
// plugged in at the composition root, and SenderRegistry lets that root look them up
// by channel name.
package dip
