package internal

// Version is the sittranslate release version
const Version = "0.1.0"
