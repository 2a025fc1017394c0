// Package image1bit provides the 1-bit image format sent to the SSD1325 by
// ssd1325.Dev.BlitL1.
//
// Pixels are stored row by row, 8 pixels per byte. The most significant bit
// holds the leftmost pixel of the group.
//
// Memory layout example for a 16-pixel row:
//
//	Pixels: 0 1 2 3 4 5 6 7   8 9 A B C D E F
//	Values: 1 0 1 0 0 1 1 0   1 1 1 1 0 0 0 0
//	Bytes:  0xA6              0xF0
//
// Colors are the periph.io image1bit.Bit type, so images are interchangeable
// with other periph display drivers:
//
//	// Create a 128x64 frame
//	img := image1bit.NewHorizontalMSB(image.Rect(0, 0, 128, 64))
//
//	// Light a pixel
//	img.SetBit(10, 20, image1bit.On)
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(image1bit.On), image.Point{}, draw.Src)
//
//	// Send it
//	dev.BlitL1(img.Frame())
package image1bit
