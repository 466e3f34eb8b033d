/*
Package log provides global output control for mailprobe. There are four levels: Silent,
Major, Minor and Debug, each more detailed than the previous. Levels are inclusive so
setting MinorLevel also produces MajorLevel output.

Major is for the few lines a user running an audit always wants to see, such as start-up
and the final resolver statistics. Minor carries the outcome of each individual check and
Debug carries every DNS exchange in compact form.

Print and Printf style functions differ from their fmt counterparts in two ways. Every
line of a multi-line string is prefixed with the level prefix, and a trailing newline is
neither needed nor preserved: excess trailing newlines are trimmed and exactly one is
written.

Output destined for the user which is not subject to levels, such as the report itself or
usage text, should still be written to log.Out() so that tests can capture it.
*/
package log
