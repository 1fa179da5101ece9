package imageio

// Image conversion constants
const (
	maxChannelValue = 0xffff // Full scale of a 16-bit color channel
)

// WAV format constants
const (
	bitsPerSample8  = 8       // Narrowest readable PCM depth, unsigned
	bitsPerSample16 = 16      // Output PCM bit depth
	bitsPerSample32 = 32      // Widest readable PCM depth
	monoChannels    = 1       // Output channel count
	wavFormatPCM    = 1       // WAVE_FORMAT_PCM
	maxInt16        = 32767.0 // Full scale for 16-bit PCM
)
