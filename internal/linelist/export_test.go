package linelist

var ReadAndClose = readAndClose
