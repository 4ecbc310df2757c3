// Package input acquires passwords for auditing. It supports a hidden
// terminal prompt (no echo), piped standard input, and list files with
// one password per line. Input read from prompts and files is
// normalized to NFC so composed and decomposed forms of the same text
// measure the same length.
package input
