package fixture

import "strings"

// Directory returns the listing for an absolute path. Paths in the table may
// start with HomeAlias, which is expanded to home.
func (s *Set) Directory(path, home string) *Directory {
	for _, dir := range s.Directories {
		if expand(dir.Path, home) == path {
			return dir
		}
	}
	return nil
}

// HomeDirectory returns the listing used when the working directory has no table entry.
func (s *Set) HomeDirectory() *Directory {
	for _, dir := range s.Directories {
		if dir.Path == HomeAlias {
			return dir
		}
	}
	if len(s.Directories) > 0 {
		return s.Directories[0]
	}
	return &Directory{Path: HomeAlias}
}

// File returns canned content for an absolute path.
func (s *Set) File(path, home string) *File {
	for _, file := range s.Files {
		if expand(file.Path, home) == path {
			return file
		}
	}
	return nil
}

// Entry returns the directory entry describing path, if its parent is listed.
func (s *Set) Entry(path, home string) *Entry {
	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return nil
	}
	parent, name := path[:idx], path[idx+1:]
	if parent == "" {
		parent = "/"
	}
	dir := s.Directory(parent, home)
	if dir == nil {
		return nil
	}
	for _, entry := range dir.Entries {
		if entry.Name == name {
			return entry
		}
	}
	return nil
}

// Interface returns an interface by name.
func (s *Set) Interface(name string) *Interface {
	for _, iface := range s.Interfaces {
		if iface.Name == name {
			return iface
		}
	}
	return nil
}

// PrimaryInterface returns the first non loopback interface.
func (s *Set) PrimaryInterface() *Interface {
	for _, iface := range s.Interfaces {
		if !iface.Loopback() {
			return iface
		}
	}
	return &Interface{Name: "eth0", Inet: "127.0.0.1"}
}

func expand(path, home string) string {
	if path == HomeAlias {
		return home
	}
	if strings.HasPrefix(path, HomeAlias+"/") {
		return strings.TrimSuffix(home, "/") + path[1:]
	}
	return path
}
