package pixpack

import "os"

const (
	S_IXOTH = 1 << iota // 00001
	S_IWOTH = 1 << iota // 00002
	S_IROTH = 1 << iota
	S_IXGRP = 1 << iota
	S_IWGRP = 1 << iota // 00010
	S_IRGRP = 1 << iota
	S_IXUSR = 1 << iota
	S_IWUSR = 1 << iota
	S_IRUSR = 1 << iota // 00100
)

const S_IRWXU = S_IXUSR | S_IWUSR | S_IRUSR

// OutputFileMode is the permission set for every file the codecs write
// (rw-r--r--).
const OutputFileMode os.FileMode = S_IRUSR | S_IWUSR | S_IRGRP | S_IROTH

// OutputDirMode is the permission set for output directories created by the
// command line tool (rwxr-xr-x).
const OutputDirMode os.FileMode = S_IRWXU | S_IRGRP | S_IXGRP | S_IROTH | S_IXOTH
