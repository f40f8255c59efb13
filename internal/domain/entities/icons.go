package entities

// Icons shown next to each block and in the category menu, as data URIs.
const (
	BlockIconURI = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAACgAAAAoCAYAAACM/rhtAAAAGXRFWHRTb2Z0d2FyZQBBZG9iZSBJbWFnZVJlYWR5ccllPAAAAI1JREFUeNpiYBgFo2AUjIJRQCzQB+L7QPyfCng/EPNT24HrqeQ4GJ5PjKVMJDjwA5U9/IAYRYwkGAiKkgIgdsAhrwDFyA7A5YgDQNxI7zRajxaF9dQwlGmw58xRB446cNSBow4cdeCoA0cdOOrAUQeOOnDUgYPFgQ9o3Aukat+ZJh3zUTAKRsFQBAABBgCoVDVJPyGtBgAAAABJRU5ErkJggg=="
	MenuIconURI  = BlockIconURI
)
