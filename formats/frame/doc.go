// SPDX-License-Identifier: EPL-2.0

// Package frame writes decoded video frames as image files.
//
// Encoders are looked up by name from a Registry:
//
//	enc, err := frame.DefaultRegistry().Lookup("qoi")
//	if err != nil {
//	    return err
//	}
//	err = enc.Encode(out, dec.Image())
//
// PNG uses the standard library encoder. QOI uses github.com/xfmoulet/qoi,
// which is much faster for the flat colors of VQ video.
package frame
