// Package annotate rewrites compiler and linker diagnostics of the gatb-core library so that they can be read
// in a terminal.
//
// Template instantiations such as
//
//	gatb::core::debruijn::impl::Node_t<gatb::core::tools::math::LargeInt<1> >
//
// are replaced by a short colorized alias (NodeFast<1>), the "undefined reference to" and "In function" keywords
// are highlighted, and object file section locations like foo.o:(.text.bar+0x12) are shortened to foo.o:(..).
//
// Typical use:
//
//	make -j 4 2>&1 | gccfilter | less -R
package annotate
