package util

// Dirname returns the directory component of path, following the POSIX
// dirname contract: trailing slashes are not part of the name, a path with
// no slash yields ".", and the root yields "/". An empty path yields ".".
//
// Unlike path.Dir, "." and ".." elements are left as they are.
func Dirname(path string) string {
	if len(path) == 0 {
		return "."
	}

	end := trimTrailingSlashes(path)
	if end == 0 {
		return "/"
	}

	for end > 0 && path[end-1] != '/' {
		end--
	}

	if end == 0 {
		return "."
	} else if end == 1 {
		return "/"
	}

	end = trimTrailingSlashes(path[:end])
	if end == 0 {
		// "//name" style paths collapse onto the root
		return "/"
	}
	return path[:end]
}

// Basename returns the final component of path with trailing slashes
// removed. An empty path yields "." and a path made only of slashes
// yields "/".
func Basename(path string) string {
	if len(path) == 0 {
		return "."
	}

	end := trimTrailingSlashes(path)
	if end == 0 {
		return "/"
	}

	start := end
	for start > 0 && path[start-1] != '/' {
		start--
	}

	return path[start:end]
}

func trimTrailingSlashes(path string) int {
	end := len(path)
	for end > 0 && path[end-1] == '/' {
		end--
	}
	return end
}
