// Package md2hwpx converts CommonMark/GFM Markdown into HWPX documents,
// the zip-packaged OWPML format (KS X 6101) used by Korean office software.
//
// The pipeline parses Markdown with goldmark, renders the document tree
// into OWPML section and header XML against a preset style catalog, and
// packages the parts into a conforming archive:
//
//	conv, err := md2hwpx.NewConverter(md2hwpx.WithPreset("academic"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	res, err := conv.Convert(md2hwpx.Input{Source: []byte("# Hello")})
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.WriteFile("hello.hwpx", res.HWPX, 0o644)
//
// Conversions are deterministic: identical input and preset produce
// byte-identical archives.
package md2hwpx
