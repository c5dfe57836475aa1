package checkpointer

import "fmt"

// FilenameEnumerator returns a function generating consecutively
// numbered filenames, counting up from one past start: with start 0,
// successive calls yield filename1.extension, filename2.extension, and
// so on. The filename parameter is the full filename with its path;
// extension should include the leading dot.
func FilenameEnumerator(start int, filename, extension string) func() string {
	i := start
	return func() string {
		i++
		return fmt.Sprintf("%v%v%v", filename, i, extension)
	}
}
