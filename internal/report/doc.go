// Package report renders audit reports in multiple output formats.
// It provides a text writer for terminal display, a Markdown writer for
// documentation and sharing, and a JSON writer for tool integration.
// All writers consume the same model.AuditReport and never print the
// audited password unless the caller explicitly replaced the mask.
package report
