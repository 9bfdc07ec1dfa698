package setting

// LookupInt32 returns the value of the setting at path as an int32. ok
// is false if there is no such setting or it cannot be read as an int32.
func (c *Config) LookupInt32(path string) (v int32, ok bool) {
	n := c.Lookup(path)
	if n == nil {
		return 0, false
	}
	v, err := n.Int32()
	return v, err == nil
}

func (c *Config) LookupInt64(path string) (v int64, ok bool) {
	n := c.Lookup(path)
	if n == nil {
		return 0, false
	}
	v, err := n.Int64()
	return v, err == nil
}

func (c *Config) LookupFloat64(path string) (v float64, ok bool) {
	n := c.Lookup(path)
	if n == nil {
		return 0, false
	}
	v, err := n.Float64()
	return v, err == nil
}

func (c *Config) LookupBool(path string) (v bool, ok bool) {
	n := c.Lookup(path)
	if n == nil {
		return false, false
	}
	v, err := n.Bool()
	return v, err == nil
}

func (c *Config) LookupString(path string) (v string, ok bool) {
	n := c.Lookup(path)
	if n == nil {
		return "", false
	}
	v, err := n.Str()
	return v, err == nil
}
