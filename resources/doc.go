// Package resources prepares paths for yoke resource files.
//
// The JoinPath() function returns the correct path to the resource
// directory/file specified in the arguments, creating directories as
// required along the way. It does not otherwise touch or create files.
//
// The base path prepended by JoinPath() depends on how the binary was
// built. For builds with the "release" build tag the path is rooted in the
// user's configuration directory. On modern Linux systems the full path
// would be something like:
//
//	/home/user/.config/yoke/
//
// For non-"release" builds the path is rooted in the current working
// directory:
//
//	.yoke
//
// During development it is convenient to have the config directory close to
// hand. For release binaries it should be where the end-user expects.
//
// # portable.txt
//
// The exception to both rules is when a file named 'portable.txt' sits in
// the same directory as the program binary. When the file exists resources
// are kept in a directory named 'Yoke_UserData' alongside the binary.
package resources
