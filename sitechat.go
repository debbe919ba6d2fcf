// Package sitechat provides a minimal website assistant. An offline indexer
// turns a tree of local HTML files into a JSON index of plain-text pages,
// and an HTTP service answers chat messages with a templated reply plus the
// indexed pages whose vocabulary best overlaps the message.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/).
package sitechat
