// Package app is the composition root of shelf.
//
// Run loads configuration (file, then SHELF_* environment, then the Options
// passed from flags), opens the JSON log file, builds the bookshelf API
// client, resolves the start route and theme, and then blocks in ui.Run until
// the user quits or the context is cancelled.
//
// Invalid configuration, an unusable API address, an unknown start route and
// an unwritable log file are fatal and returned before the UI starts. A
// missing or broken preferences file is not; the default theme is used.
//
// Nothing here touches the network. The first request is issued by the UI
// once it enters its start route.
package app
