package chemjson

//Package chemjson implements serialization and unserialization of
//molrx data types: molecules and reactions, mappings included.
//It's planned use is the communication of molrx programs with other,
//independent programs, which can be written in any language able
//to read line-delimited JSON. Each molecule or reaction takes one line.
//Streams can be zstd-compressed, and compressed input is detected
//automatically.
//chemjson also implements the transmision of options, so an external
//program can transmit data and options for a job to a molrx program
//and later collect the results, for instance, via UNIX pipes.
