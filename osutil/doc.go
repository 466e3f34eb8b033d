/*
Package osutil hides the platform differences in signal handling.
*/
package osutil
