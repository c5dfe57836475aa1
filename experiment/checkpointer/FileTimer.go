package checkpointer

import (
	"fmt"
	"time"
)

// FileTimer returns a function generating timestamped filenames. Each
// call stamps the filename with the Unix time in nanoseconds at the
// moment of the call, so files from successive checkpoints do not
// collide. The extension should include the leading dot.
func FileTimer(filename, extension string) func() string {
	return func() string {
		stamp := time.Now().UnixNano()
		return fmt.Sprintf("%v-%v%v", filename, stamp, extension)
	}
}
